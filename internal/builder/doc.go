// Package builder runs artifact builders: each builder writes files into a
// scoped temporary directory, and the runner renames them with the current
// platform tag and moves them into the dist output directory. The staging
// directory is released on success and failure alike.
package builder
