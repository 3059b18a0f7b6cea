// This file is part of thumb2dis.
//
// thumb2dis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// thumb2dis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// Package thumb2 decodes ARMv7-M/ARMv7E-M Thumb-2 instruction streams into
// typed operation records.
//
// The package is organised the way the ARM Architecture Reference Manual
// organises the encoding space: a top-level driver (see driver.go) picks
// between the 16-bit decoder (decode16.go) and the 32-bit decoder
// (decode32.go) by looking at the top five bits of the first half-word, and
// each of those delegates to sub-tables named after the manual section they
// implement (A5.2, A5.3, ..., A6.9). Every sub-table peeks its half-word(s),
// never consumes until it has committed to a concrete encoding, and returns
// either a typed Operation or a typed *Error.
//
// The decoder holds no state beyond the Stream's cursor. It does not
// evaluate instruction semantics, interpret IT-block predication, or
// execute VFP/NEON arithmetic; it only classifies and extracts operand
// fields, per the "ARM Architecture Reference Manual Thumb-2 Supplement"
// (referenced throughout as "Thumb-2 Supplement") and the "ARMv7-M
// Architecture Reference Manual" ("ARMv7-M").
package thumb2
