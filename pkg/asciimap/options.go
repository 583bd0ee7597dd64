package asciimap

// Option configures a Converter during New(). Options exist for embedding the
// library with a different compile-time table; the shipped tool always runs
// with the defaults.
type Option func(*Converter)

/*
WithPalette specifies the color table to classify pixels with. The default is
DefaultPalette(), the fixed table the simulation expects. The converter takes
ownership of the map; do not mutate it afterwards.
*/
func WithPalette(p Palette) Option {
	return func(c *Converter) {
		c.palette = p
	}
}

/*
WithFallback specifies the character emitted for colors absent from the
palette. The default is DefaultFallback ('S'), which deliberately collides
with the greenish terrain character.
*/
func WithFallback(ch byte) Option {
	return func(c *Converter) {
		c.fallback = ch
	}
}
