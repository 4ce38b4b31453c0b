// Package assets provides the print stylesheets applied to résumés before
// rendering. Styles are embedded in the binary; a CSS file on disk can be
// used instead through LoadStyleFile.
package assets
