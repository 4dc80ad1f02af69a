// Package imageio reads and writes layers, spritesheets and animations.
//
// The file format follows the extension: PNG and TIFF keep the alpha
// channel, JPEG and BMP drop it. Spritesheets are written with their sprite
// size encoded in the bottom-right pixel so LoadSpritesheet can recover it.
//
// Every Save function writes to a temporary file in the destination
// directory and renames it into place, so a failed save leaves both the
// destination file and the in-memory layer untouched.
package imageio
