// Package ast contains the GML syntax tree.
//
// The node set is closed: [*Comment], [*KeyValuePair], [*Scalar], [*Object]
// and [*Document]. Object bodies keep two ordered lists, properties and
// children, whose entry types are restricted by the [Property] and [Child]
// interfaces:
//
//	@GUI::Widget {          // *Object, Name "GUI::Widget"
//	    // sized            // *Comment in Properties
//	    fixed_width: 260    // *KeyValuePair with a *Scalar value
//	    layout: @GUI::VerticalBoxLayout {
//	        margins: [4]
//	    }                   // *KeyValuePair with an *Object value
//
//	    @GUI::Button {}     // *Object in Children
//	}
//
// Scalar values are kept as raw source text; the tree makes no attempt to
// interpret them.
//
// By convention a property keyed "layout" holds an object value describing
// the layout of the enclosing object. The tree does not enforce this, see
// [Object.Layout].
package ast
