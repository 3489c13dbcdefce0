// Package encoder serializes parameter values according to the OpenAPI 3
// style/explode rules and substitutes them into path templates and query
// strings.
//
// OpenAPI 3 defines a closed set of serialization styles per parameter
// location. This package implements the producing side of those tables:
//
// Path parameters (never percent-encoded):
//
//	| style  | explode | primitive | array           | object                    |
//	|--------|---------|-----------|-----------------|---------------------------|
//	| simple | false   | 5         | 3,4,5           | role,admin,name,Alex      |
//	| simple | true    | 5         | 3,4,5           | role=admin,name=Alex      |
//	| label  | false   | .5        | .3,4,5          | .role,admin,name,Alex     |
//	| label  | true    | .5        | .3.4.5          | .role=admin.name=Alex     |
//	| matrix | false   | ;id=5     | ;id=3,4,5       | ;id=role,admin,name,Alex  |
//	| matrix | true    | ;id=5     | ;id=3;id=4;id=5 | ;role=admin;name=Alex     |
//
// Query parameters (every value percent-encoded):
//
//	| style          | explode | primitive | array          | object                  |
//	|----------------|---------|-----------|----------------|-------------------------|
//	| form           | true    | id=5      | id=3&id=4&id=5 | role=admin&name=Alex    |
//	| form           | false   | id=5      | id=3,4,5       | id=role,admin,name,Alex |
//	| spaceDelimited | true    | error     | id=3&id=4&id=5 | error                   |
//	| spaceDelimited | false   | error     | id=3%204%205   | error                   |
//	| pipeDelimited  | true    | error     | id=3&id=4&id=5 | error                   |
//	| pipeDelimited  | false   | error     | id=3|4|5       | error                   |
//	| deepObject     | true    | error     | error          | id[role]=admin          |
//
// Path encoding deliberately performs no percent-encoding: special characters
// such as '/', '?', and non-ASCII text pass through raw. Callers relying on
// this behavior exist, so the asymmetry with query encoding is contractual,
// not an oversight.
//
// [FormatPath] and [FormatQuery] apply the encoders across a whole parameter
// set: FormatPath substitutes named {placeholder} segments in a template and
// fails on any placeholder with no supplied value; FormatQuery joins the
// encoded fragments with '&'.
//
// Unrecognized style names surface as [binderrors.StyleError]; combinations
// the tables leave undefined surface as [binderrors.EncodingError].
package encoder
