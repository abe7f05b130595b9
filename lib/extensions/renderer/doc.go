// Package renderer loads the embedded JavaScript sources under
// lib/extensions/renderer/templates/ and renders them with sprig functions.
//
// Lambda@Edge functions cannot read environment variables, so kind-specific
// parameters (referer lists, country tables, OAuth client settings) are
// substituted into the function source at synth time. The templates live as
// separate `.js.tmpl` files instead of Go string literals so they stay
// readable and diffable.
//
// Example:
//
//	code, err := renderer.Render(renderer.TplGeoOriginSelector, descriptor.Parameters)
//	if err != nil { ... }
//	awslambda.Code_FromInline(jsii.String(code))
package renderer
