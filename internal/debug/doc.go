// Package debug provides optional structured debug logging.
//
// When the LCD_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op until
// Init or SetOutput attaches a destination.
package debug
