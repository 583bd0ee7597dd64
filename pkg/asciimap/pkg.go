// The asciimap package implements the logic for converting a color-coded map
// image into the plain-text terrain grid read by the simulation setup.
// By default, the package supports .png, .jpg, .jpeg, .gif, .bmp, .tiff and
// the pnm family. See ConvertBytes() and ConvertReader().
// To support other image formats, either use Convert() instead or import your
// custom decoders like so:
/*
import (
	... <other imports>

	_ "mycustomdecoder/mycustomformat" // Here is your custom file format

	...
)
*/
// Start by calling New(). Pass the options into the constructor (see
// options.go). While all accessors are public, treat the Converter struct as
// immutable after construction.
package asciimap
