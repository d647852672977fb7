// Package slingshot attaches a "drag past the bottom, release to jump back
// to the top" behavior to a scrollable Fyne container.
//
// When the user drags content beyond its natural bottom edge, a small
// indicator fades in below the content. Once the overscroll distance crosses
// a threshold the indicator flips its arrow; releasing the drag then animates
// the container back to the top of its content.
//
// The behavior observes any host implementing the Container interface.
// OverscrollContainer is the bundled host for plain Fyne content. All calls
// are expected on the Fyne event goroutine; the package does no locking of
// its own.
package slingshot
