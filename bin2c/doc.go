// Package bin2c embeds opaque binary data into generated C source.
//
// Convert turns a byte slice into a source/header pair declaring a constant
// uint8_t array plus a size macro, with optional alignment and address-space
// annotations for banked targets.
package bin2c
