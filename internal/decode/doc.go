// Package decode turns the loosely typed values returned by the Lufa backend
// into strict Go values.
//
// The backend is inconsistent about wire types: money arrives as integers,
// floats or strings in either North-American ("1,000.00") or European
// ("1.000,00") notation, booleans arrive as strings, numbers or null,
// timestamps use an all-zero sentinel and collections switch between JSON
// arrays and objects depending on whether they are empty.
//
// Every decoder first classifies the raw JSON value into a Scalar (an explicit
// tagged union) and then converts it into the target type. Failures are
// reported as *DecodeError, which matches common.ErrDecode with errors.Is.
//
// Record types in the models package use these types as struct fields, so a
// failing field aborts decoding of the whole record.
package decode
