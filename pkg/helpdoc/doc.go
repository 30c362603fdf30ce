/*
Package helpdoc turns a stored help record into a manual-page style text block.

A record is the generic value decoded from a command's help file:

	{
	  "name": "foo",
	  "signature": "foo [-x] FILE",
	  "description": ["Does a thing.", {"type": "options", "items": [["-x", "enable x"]]}],
	  "exit status": "0 on success."
	}

The description is either a bare string, printed verbatim, or an ordered list
of blocks. ParseBlock classifies each raw block once into the closed set
Paragraph, BulletList, LabeledList, OptionTable and Unknown; the renderers only
ever see those types.

# Rendering

New validates the record and renders it eagerly, so a Document that was
constructed successfully always prints:

	foo: foo [-x] FILE
	    Does a thing.

	    Options:
	      -x   enable x

Blocks are separated by exactly one blank line. Unknown blocks and malformed
option rows are skipped and reported through Document.Warnings instead of a
logger, which keeps rendering a pure function of the record and the width.

# Errors

A record without name, signature or description fails with an
errors.ErrMissingField error whose "field" detail names the key. A key with the
wrong type fails with errors.ErrInvalidField.
*/
package helpdoc
