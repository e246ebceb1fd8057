// Package find implements the "tagfind find" command.
//
// The command runs taglib discovery from a start directory and prints the
// visible taglibs as text, JSON or a table. Exclusions come from the
// configuration file and from flags; when no configuration file exists and
// the session is interactive, the flag exclusions can be saved for next time.
package find
