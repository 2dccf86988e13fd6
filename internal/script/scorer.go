// Package script runs user-supplied Lua scoring functions.
//
// A script exposes a global function
//
//	function score(query, target, matches) return n end
//
// which replaces the built-in fine scorer. Tier classification stays with the
// matcher; the script only rates the alignment. A script error degrades to
// the default scorer for that call so completion keeps working.
package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/xmlsense/internal/fuzzy"
)

// ErrNoScoreFunction indicates the script does not define score().
var ErrNoScoreFunction = errors.New("script does not define a score function")

// Scorer adapts a Lua score function to the fuzzy scoring contract.
// Lua states are single-threaded, so calls are serialized with a mutex.
type Scorer struct {
	mu       sync.Mutex
	state    *lua.LState
	fn       *lua.LFunction
	fallback fuzzy.Scorer
	lastErr  error
}

// LoadFile compiles the Lua script at path into a scorer.
func LoadFile(path string) (*Scorer, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading score script %s: %w", path, err)
	}
	return wrap(L, path)
}

// LoadString compiles Lua source into a scorer.
func LoadString(source string) (*Scorer, error) {
	L := lua.NewState()
	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading score script: %w", err)
	}
	return wrap(L, "<string>")
}

func wrap(L *lua.LState, source string) (*Scorer, error) {
	fn, ok := L.GetGlobal("score").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%s: %w", source, ErrNoScoreFunction)
	}
	return &Scorer{
		state:    L,
		fn:       fn,
		fallback: fuzzy.DefaultWeights(),
	}, nil
}

// Score implements the fuzzy scoring contract by calling the Lua score
// function. On any script failure it falls back to the default scorer and
// records the error.
func (s *Scorer) Score(queryRunes, originalRunes, textRunes []rune, matches []int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	tbl := s.state.NewTable()
	for _, idx := range matches {
		// Lua tables are 1-based.
		tbl.Append(lua.LNumber(idx + 1))
	}

	err := s.state.CallByParam(lua.P{
		Fn:      s.fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(string(queryRunes)), lua.LString(string(originalRunes)), tbl)
	if err != nil {
		s.lastErr = err
		return s.fallback.Score(queryRunes, originalRunes, textRunes, matches)
	}

	ret := s.state.Get(-1)
	s.state.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		s.lastErr = fmt.Errorf("score returned %s, want number", ret.Type())
		return s.fallback.Score(queryRunes, originalRunes, textRunes, matches)
	}
	return int(n)
}

// Err returns the most recent script failure, if any.
func (s *Scorer) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Close releases the Lua state. The scorer must not be used afterwards.
func (s *Scorer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Close()
}
