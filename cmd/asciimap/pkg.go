// This package implements the command line tool that uses the API.
// It provides an easy and reliable interface to convert color-coded map
// images into the ASCII terrain grids read by the simulation, render grids
// back into images, and inspect maps from the terminal.
//
// By default, the converter is compatible with .png, .jpg, .jpeg, .gif,
// .bmp, .tiff and pnm file formats
// (See github.com/nebbyJammin/asciimap/pkg/asciimap).
package main
