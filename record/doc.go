/*
Package record formats and parses fixed-width records of Shift-JIS text.

A record is a line of a legacy flat file, made up of fields of a fixed byte
width. A Layout describes the fields; it may be constructed in code or read
from YAML:

	name: customer
	fields:
	  - name: id
	    width: 6
	    align: right
	    pad: "0"
	  - name: name
	    width: 12
	  - name: note
	    width: 10
	    nullable: true

Formatting a record right-aligns or left-aligns every value to exactly its
field width (see dbcs.FixLeftWithB and dbcs.FixRightWithB). Parsing cuts the
fields at their byte offsets and strips the padding.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package record

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dbcs'
func tracer() tracing.Trace {
	return tracing.Select("dbcs")
}
