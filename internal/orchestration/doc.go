// Package orchestration times counting runs and aggregates results for
// comparison. It decouples measurement from presentation via the Clock and
// ResultPresenter interfaces.
package orchestration
