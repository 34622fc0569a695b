// Package extract reconstructs specification tables from the positioned
// text that package poppler recovers. It finds figure captions, splits
// each page into per-figure regions, clusters the region's text into a
// cell grid, and assembles normalized [model.Table] values ready for
// validation.
package extract
