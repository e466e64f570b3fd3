// Package core holds the pieces shared by every stage of the denoising
// pipeline: the session time grid, the error taxonomy and small numeric
// helpers.
package core
