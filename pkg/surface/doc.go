// Package surface provides [chart.Surface] implementations.
//
// Three surfaces are available:
//
//   - [SVG] records drawing calls as SVG elements. Text is measured with a
//     [Measurer], estimated by default or exact when the font is embedded
//     with [WithEmbeddedFont].
//   - [Raster] draws into a pixel buffer with github.com/gogpu/gg and
//     encodes PNG or JPEG. Text uses the embedded font from package fonts.
//   - [Recorder] only records calls. It backs dry runs and tests.
//
// All surfaces keep the canvas drawing model: one current path, a style
// state, and a Save/Restore stack that covers both the style and the
// transform.
package surface
