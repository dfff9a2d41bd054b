// Package particles simulates the ambient particle network backdrop.
//
// A Field holds a set of drifting points sized to the viewport area. Each
// tick moves the points, reflects them off the viewport edges and advances
// their pulse phase. Resizing never migrates particles: the next Sync after
// a viewport generation change reseeds the whole set.
package particles
