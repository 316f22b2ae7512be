// Package bench measures the counting algorithms against a fixed input file.
//
// Each algorithm is warmed up, then timed over a number of samples whose
// iteration count is calibrated so a sample lasts roughly Options.SampleTime.
// Results are summarized with gonum's stat package and rendered as a table.
package bench
