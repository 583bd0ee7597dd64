package asciimap

import "errors"

// ErrSourceNotFound reports that the input image path does not exist or could
// not be opened. Callers branch on it with errors.Is; every other failure
// (corrupt image, write error, disk full) is wrapped generically and treated
// uniformly. Both kinds are terminal for the invocation, there are no retries.
var ErrSourceNotFound = errors.New("source image not found")
