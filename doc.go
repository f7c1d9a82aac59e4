// Package jcolor repairs loosely formatted JSON, as printed by common
// logging and debugging conventions, and renders it as indented,
// syntax-highlighted text for a terminal.
//
// Normalization quotes bracketed placeholders such as [Object] and bare
// ISO-8601 timestamps, strips the n suffix from big integers and replaces
// undefined with null before handing the text to a strict JSON parser.
//
// Basic usage:
//
//	out, err := jcolor.Render(`{"user": [Object], "id": 42n}`, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Without colours:
//
//	opts := &jcolor.Options{Color: "never"}
//	if err := jcolor.RenderTo(os.Stdout, input, opts); err != nil {
//		log.Fatal(err)
//	}
//
// Repaired JSON for other tools:
//
//	if err := jcolor.RepairTo(os.Stdout, input, nil); err != nil {
//		log.Fatal(err)
//	}
package jcolor
