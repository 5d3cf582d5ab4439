// Package gml provides canonical formatting of GML markup.
//
// GML describes a tree of class tagged objects:
//
//	// leading comment
//	@GUI::Widget {
//	    fixed_width: 260
//	    layout: @GUI::VerticalBoxLayout {
//	        margins: [4]
//	    }
//
//	    @GUI::Button {
//	        text: "OK"
//	    }
//	}
//
// [Format] parses and re-encodes a document in canonical form, [Diff]
// compares an input with its canonical form line by line.
//
// The pipeline is available piecewise in the token, parse, ast and encode
// packages.
package gml
