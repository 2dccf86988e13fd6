package catalog

// builtinCatalog covers the common XSD and XSLT vocabulary. Users replace it
// wholesale by loading their own catalog file in the same format.
const builtinCatalog = `{
  "roots": [
    {"label": "xs:schema", "description": "XML Schema definition root"},
    {"label": "xsl:stylesheet", "description": "XSLT stylesheet root"},
    {"label": "xsl:transform", "description": "XSLT stylesheet root (synonym)"}
  ],
  "elements": {
    "xs:schema": {
      "children": [
        {"label": "xs:element", "description": "global element declaration"},
        {"label": "xs:complexType", "description": "named complex type"},
        {"label": "xs:simpleType", "description": "named simple type"},
        {"label": "xs:attribute", "description": "global attribute declaration"},
        {"label": "xs:attributeGroup", "description": "reusable attribute group"},
        {"label": "xs:group", "description": "reusable model group"},
        {"label": "xs:import", "description": "import from another namespace"},
        {"label": "xs:include", "description": "include same-namespace schema"},
        {"label": "xs:annotation", "description": "documentation container"},
        {"label": "xs:notation", "description": "notation declaration"}
      ]
    },
    "xs:element": {
      "children": [
        {"label": "xs:complexType", "description": "anonymous complex type"},
        {"label": "xs:simpleType", "description": "anonymous simple type"},
        {"label": "xs:annotation", "description": "documentation container"},
        {"label": "xs:key", "description": "key constraint"},
        {"label": "xs:keyref", "description": "key reference constraint"},
        {"label": "xs:unique", "description": "uniqueness constraint"}
      ]
    },
    "xs:complexType": {
      "children": [
        {"label": "xs:sequence", "description": "ordered content model"},
        {"label": "xs:choice", "description": "alternative content model"},
        {"label": "xs:all", "description": "unordered content model"},
        {"label": "xs:attribute", "description": "attribute declaration"},
        {"label": "xs:attributeGroup", "description": "attribute group reference"},
        {"label": "xs:simpleContent", "description": "text content with attributes"},
        {"label": "xs:complexContent", "description": "derived complex content"},
        {"label": "xs:annotation", "description": "documentation container"},
        {"label": "xs:anyAttribute", "description": "attribute wildcard"}
      ]
    },
    "xs:simpleType": {
      "children": [
        {"label": "xs:restriction", "description": "restrict a base type"},
        {"label": "xs:list", "description": "whitespace-separated list type"},
        {"label": "xs:union", "description": "union of member types"},
        {"label": "xs:annotation", "description": "documentation container"}
      ]
    },
    "xs:sequence": {
      "children": [
        {"label": "xs:element", "description": "local element declaration"},
        {"label": "xs:group", "description": "model group reference"},
        {"label": "xs:choice", "description": "nested choice"},
        {"label": "xs:sequence", "description": "nested sequence"},
        {"label": "xs:any", "description": "element wildcard"},
        {"label": "xs:annotation", "description": "documentation container"}
      ]
    },
    "xs:choice": {
      "children": [
        {"label": "xs:element", "description": "local element declaration"},
        {"label": "xs:group", "description": "model group reference"},
        {"label": "xs:choice", "description": "nested choice"},
        {"label": "xs:sequence", "description": "nested sequence"},
        {"label": "xs:any", "description": "element wildcard"}
      ]
    },
    "xs:restriction": {
      "children": [
        {"label": "xs:enumeration", "description": "enumerated value facet"},
        {"label": "xs:pattern", "description": "regular expression facet"},
        {"label": "xs:minInclusive", "description": "inclusive lower bound"},
        {"label": "xs:maxInclusive", "description": "inclusive upper bound"},
        {"label": "xs:minExclusive", "description": "exclusive lower bound"},
        {"label": "xs:maxExclusive", "description": "exclusive upper bound"},
        {"label": "xs:minLength", "description": "minimum length facet"},
        {"label": "xs:maxLength", "description": "maximum length facet"},
        {"label": "xs:length", "description": "exact length facet"},
        {"label": "xs:totalDigits", "description": "total digits facet"},
        {"label": "xs:fractionDigits", "description": "fraction digits facet"},
        {"label": "xs:whiteSpace", "description": "whitespace handling facet"}
      ]
    },
    "xs:annotation": {
      "children": [
        {"label": "xs:documentation", "description": "human-readable documentation"},
        {"label": "xs:appinfo", "description": "machine-readable annotation"}
      ]
    },
    "xsl:stylesheet": {
      "children": [
        {"label": "xsl:template", "description": "template rule"},
        {"label": "xsl:output", "description": "serialization options"},
        {"label": "xsl:param", "description": "stylesheet parameter"},
        {"label": "xsl:variable", "description": "global variable"},
        {"label": "xsl:import", "description": "import another stylesheet"},
        {"label": "xsl:include", "description": "include another stylesheet"},
        {"label": "xsl:key", "description": "named key declaration"},
        {"label": "xsl:attribute-set", "description": "reusable attribute set"},
        {"label": "xsl:strip-space", "description": "strip whitespace nodes"},
        {"label": "xsl:preserve-space", "description": "preserve whitespace nodes"}
      ]
    },
    "xsl:template": {
      "children": [
        {"label": "xsl:apply-templates", "description": "process matching nodes"},
        {"label": "xsl:call-template", "description": "invoke a named template"},
        {"label": "xsl:value-of", "description": "emit string value"},
        {"label": "xsl:copy-of", "description": "deep copy of nodes"},
        {"label": "xsl:for-each", "description": "iterate a node set"},
        {"label": "xsl:if", "description": "conditional content"},
        {"label": "xsl:choose", "description": "multi-way conditional"},
        {"label": "xsl:variable", "description": "local variable"},
        {"label": "xsl:param", "description": "template parameter"},
        {"label": "xsl:text", "description": "literal text"},
        {"label": "xsl:element", "description": "computed element"},
        {"label": "xsl:attribute", "description": "computed attribute"},
        {"label": "xsl:comment", "description": "computed comment"}
      ]
    },
    "xsl:choose": {
      "children": [
        {"label": "xsl:when", "description": "conditional branch"},
        {"label": "xsl:otherwise", "description": "fallback branch"}
      ]
    },
    "xsl:for-each": {
      "children": [
        {"label": "xsl:sort", "description": "sort the iteration"},
        {"label": "xsl:value-of", "description": "emit string value"},
        {"label": "xsl:if", "description": "conditional content"},
        {"label": "xsl:choose", "description": "multi-way conditional"}
      ]
    }
  },
  "attributes": {
    "xs:schema": [
      {"label": "targetNamespace", "dataType": "xs:anyURI", "description": "namespace being defined"},
      {"label": "elementFormDefault", "dataType": "xs:NMTOKEN"},
      {"label": "attributeFormDefault", "dataType": "xs:NMTOKEN"},
      {"label": "version", "dataType": "xs:token"},
      {"label": "xmlns:xs", "dataType": "xs:anyURI"}
    ],
    "xs:element": [
      {"label": "name", "dataType": "xs:NCName", "required": true, "description": "element name"},
      {"label": "type", "dataType": "xs:QName", "description": "declared type"},
      {"label": "ref", "dataType": "xs:QName", "description": "reference to a global element"},
      {"label": "minOccurs", "dataType": "xs:nonNegativeInteger"},
      {"label": "maxOccurs", "dataType": "xs:allNNI"},
      {"label": "default", "dataType": "xs:string"},
      {"label": "fixed", "dataType": "xs:string"},
      {"label": "nillable", "dataType": "xs:boolean"},
      {"label": "abstract", "dataType": "xs:boolean"},
      {"label": "substitutionGroup", "dataType": "xs:QName"}
    ],
    "xs:attribute": [
      {"label": "name", "dataType": "xs:NCName", "required": true},
      {"label": "type", "dataType": "xs:QName"},
      {"label": "ref", "dataType": "xs:QName"},
      {"label": "use", "dataType": "xs:NMTOKEN"},
      {"label": "default", "dataType": "xs:string"},
      {"label": "fixed", "dataType": "xs:string"}
    ],
    "xs:complexType": [
      {"label": "name", "dataType": "xs:NCName"},
      {"label": "abstract", "dataType": "xs:boolean"},
      {"label": "mixed", "dataType": "xs:boolean"},
      {"label": "final", "dataType": "xs:derivationSet"},
      {"label": "block", "dataType": "xs:derivationSet"}
    ],
    "xs:simpleType": [
      {"label": "name", "dataType": "xs:NCName"},
      {"label": "final", "dataType": "xs:derivationSet"}
    ],
    "xs:restriction": [
      {"label": "base", "dataType": "xs:QName", "required": true, "description": "base type being restricted"}
    ],
    "xs:enumeration": [
      {"label": "value", "dataType": "xs:anySimpleType", "required": true}
    ],
    "xs:import": [
      {"label": "namespace", "dataType": "xs:anyURI"},
      {"label": "schemaLocation", "dataType": "xs:anyURI"}
    ],
    "xs:include": [
      {"label": "schemaLocation", "dataType": "xs:anyURI", "required": true}
    ],
    "xsl:stylesheet": [
      {"label": "version", "dataType": "xs:NMTOKEN", "required": true},
      {"label": "xmlns:xsl", "dataType": "xs:anyURI"},
      {"label": "exclude-result-prefixes", "dataType": "xs:NMTOKENS"}
    ],
    "xsl:template": [
      {"label": "match", "dataType": "pattern", "description": "pattern of nodes this template applies to"},
      {"label": "name", "dataType": "xs:QName", "description": "name for xsl:call-template"},
      {"label": "mode", "dataType": "xs:QName"},
      {"label": "priority", "dataType": "xs:decimal"}
    ],
    "xsl:apply-templates": [
      {"label": "select", "dataType": "expression"},
      {"label": "mode", "dataType": "xs:QName"}
    ],
    "xsl:value-of": [
      {"label": "select", "dataType": "expression", "required": true},
      {"label": "disable-output-escaping", "dataType": "xs:boolean"}
    ],
    "xsl:for-each": [
      {"label": "select", "dataType": "expression", "required": true}
    ],
    "xsl:if": [
      {"label": "test", "dataType": "expression", "required": true}
    ],
    "xsl:when": [
      {"label": "test", "dataType": "expression", "required": true}
    ],
    "xsl:output": [
      {"label": "method", "dataType": "xs:NMTOKEN"},
      {"label": "encoding", "dataType": "xs:string"},
      {"label": "indent", "dataType": "xs:NMTOKEN"},
      {"label": "omit-xml-declaration", "dataType": "xs:NMTOKEN"}
    ]
  },
  "values": {
    "xs:attribute": {
      "use": ["optional", "prohibited", "required"]
    },
    "xs:element": {
      "maxOccurs": ["0", "1", "unbounded"],
      "minOccurs": ["0", "1"],
      "nillable": ["true", "false"],
      "abstract": ["true", "false"]
    },
    "xs:schema": {
      "elementFormDefault": ["qualified", "unqualified"],
      "attributeFormDefault": ["qualified", "unqualified"]
    },
    "xs:complexType": {
      "mixed": ["true", "false"],
      "abstract": ["true", "false"]
    },
    "xs:whiteSpace": {
      "value": ["preserve", "replace", "collapse"]
    },
    "xsl:output": {
      "method": ["xml", "html", "text"],
      "indent": ["yes", "no"],
      "omit-xml-declaration": ["yes", "no"]
    },
    "xsl:value-of": {
      "disable-output-escaping": ["yes", "no"]
    }
  },
  "namespaces": [
    {"label": "http://www.w3.org/2001/XMLSchema", "description": "XML Schema (xs)"},
    {"label": "http://www.w3.org/2001/XMLSchema-instance", "description": "XML Schema instance (xsi)"},
    {"label": "http://www.w3.org/1999/XSL/Transform", "description": "XSLT (xsl)"},
    {"label": "http://www.w3.org/1999/xhtml", "description": "XHTML"},
    {"label": "http://www.w3.org/2000/svg", "description": "SVG"},
    {"label": "http://www.w3.org/XML/1998/namespace", "description": "built-in xml namespace"}
  ],
  "snippets": [
    {"label": "xsl:template match", "description": "template rule with match pattern"},
    {"label": "xsl:template name", "description": "named template with parameters"},
    {"label": "xsl:for-each select", "description": "iteration over a node set"},
    {"label": "xsl:choose/when/otherwise", "description": "multi-way conditional block"},
    {"label": "xs:element with complexType", "description": "element with inline complex type"},
    {"label": "xs:simpleType enumeration", "description": "enumerated simple type"}
  ]
}`
