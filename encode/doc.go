// Package encode renders ir nodes to text with host-facing options.
//
// The serialization algorithms themselves live on ir.Node; this package
// adds the option surface hosts want: style selection and terminal
// colors.
//
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeStyle(format.Pretty),
//	    encode.EncodeColors(encode.NewColors()),
//	)
//
// Output layout is identical with and without colors; color functions
// only wrap fragments in terminal escapes.
package encode
