// Package scenario runs scripted editing sessions against a repl.Window and
// checks the resulting submission text.
//
// A scenario file is YAML:
//
//	name: box selection
//	fixtures:
//	  two: |-
//	    ab
//	    cd
//	scenarios:
//	  - name: type into a box
//	    steps:
//	      - fixture: two
//	      - place: {marker: "a", offset: 0}
//	      - place: {marker: "c", offset: 0, extend: true, block: true}
//	      - keys: "_"
//	    expect: |-
//	      a_
//	      c_
//
// Each step sets exactly one action. Fixture steps are resolved to insert
// steps when the file is parsed.
package scenario
