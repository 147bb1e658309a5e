// Package assets embeds the HTML page templates and base stylesheets used
// to lay out rendered documents.
//
// Assets are organized by type:
//
//	styles/
//	└── {name}.css     # stylesheets applied before theme rules
//	templates/
//	    └── {name}.html    # html/template page skeletons
//
// Asset names are validated so a caller-supplied name cannot reach outside
// the embedded directories.
package assets
