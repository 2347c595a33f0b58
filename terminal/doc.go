// Package terminal hosts the game on a tcell screen.
//
// The canvas is rasterized onto half-block cells: every terminal cell carries two
// vertically stacked pixels drawn with '▀', foreground for the top pixel and
// background for the bottom one. Text is placed on whole cells above the pixels.
//
// Terminals report key presses but not releases, so held movement keys are
// latched and released when auto-repeat stops arriving.
package terminal
