// Package taglib models tag library descriptors and builds them from disk.
//
// A Taglib is produced either by loading a marko.json manifest (Loader) or by
// scanning a directory whose immediate children each define one tag
// (Scanner). Discovery code only cares about a descriptor's ID and whether it
// declares its own tags directories; everything else is carried for callers
// that render or compile the tags.
package taglib
