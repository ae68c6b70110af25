// Package terminal presents the 128x64 display in a terminal through tcell.
//
// Every character cell shows two vertically stacked pixels using an upper
// half block: the foreground colors the top pixel, the background the bottom
// one. The display needs a 128x32 terminal; larger terminals center it.
//
// Terminals report key-down only. Hits are classified by input.HitFilter, and
// a dedicated key stands in for a long press of OK.
package terminal
