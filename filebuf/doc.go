// Package filebuf converts build artifacts between file and in-memory
// representations.
//
// External tools want real files; internal stages want byte buffers. A Ref
// names an artifact in either form (FileRef or DataRef), and AsFile/AsData
// convert between them. Temp files allocated for DataRef materialization
// belong to a Context whose lifetime is one build step:
//
//	ctx, err := filebuf.NewContext()
//	defer ctx.Close()
//
//	f, err := filebuf.AsFile(ctx, filebuf.DataRef{Bytes: payload})
//	// pass f.Path to the external tool
package filebuf
