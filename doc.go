// Package canvas2d is a retained-mode 2D scene graph drawn onto an
// immediate-mode canvas-like surface.
//
// A [Scene] holds [Drawable] objects ordered by z-index. A [Camera2D]
// applies zoom, rotation and scroll to the whole scene. A [Renderer2D]
// clears the surface, paints the background and draws every visible child,
// once per call to [Renderer.Render] or once per host refresh after
// [Renderer.RequestAnimationFrame].
//
// # Quick start
//
// The surface is any [surface.Context2D]. The ggsurface package provides a
// software one backed by gogpu/gg, and ebitenhost presents it in a window:
//
//	host := ebitenhost.New(800, 600)
//	canvas, _ := ggsurface.New(800, 600)
//	host.SetCanvas(canvas)
//
//	scene := canvas2d.NewScene()
//	r, _ := canvas2d.NewRenderer2D(canvas, scene, canvas2d.NewCamera2D(),
//		canvas2d.WithDisplay(host), canvas2d.WithScheduler(host))
//
//	geo, _ := canvas2d.NewRectGeometry(100, 50)
//	mat, _ := canvas2d.NewBasicMaterial(canvas2d.BasicMaterialOptions{
//		FillStyle: canvas2d.MustRgbaColor(255, 0, 0, 1),
//	})
//	mesh, _ := canvas2d.NewMesh(geo, mat)
//	scene.Add(mesh)
//
//	r.RequestAnimationFrame(canvas2d.FrameHooks{OnError: host.Stop})
//	host.RunGame(ebitenhost.RunConfig{Title: "canvas2d"})
//
// # Drawing
//
// A [Mesh] pairs a [Geometry] with a [Material]. Geometries draw relative to
// the mesh [Transform]: rectangles and polygons rotate about their center,
// circles scale their radius by the mean of the scale components and lines
// scale each point. A [PointLight2D] paints a radial gradient square.
//
// Drawables draw in ascending z-index order. Ties keep insertion order.
// Defaults are [ZIndexObject2D], [ZIndexMesh] and [ZIndexPointLight2D].
//
// # Errors
//
// Validation failures return errors that match [ErrType] or [ErrRange] with
// [errors.Is]. Batched setters such as [RgbaColor.Set] validate every field
// and leave the value unchanged on failure.
//
// # Animation
//
// [TweenGroup] animates transforms, colors and camera zoom with
// github.com/tanema/gween. Call [TweenGroup.Update] from a
// [FrameHooks.BeforeRender] hook.
//
// # Logging
//
// The package logs through [log/slog]. Logging is off until [SetLogger] is
// called. [WithDebug] adds per-frame stats at debug level.
package canvas2d
