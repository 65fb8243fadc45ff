// Package idcode decodes and validates 11-digit personal identification codes.
//
// A code is laid out as:
//
//	G YY MM DD SSS C
//
// where G is the century and gender digit, YYMMDD the birth date, SSS the
// registration number that identifies the birthplace facility and the birth
// order within its block, and C the mod-11 checksum digit.
//
// Every function in this package is pure. Decode runs every field decoder
// independently and never fails as a whole: each field of the returned Record
// holds either a value or an error of one of the serrors decode kinds.
package idcode
