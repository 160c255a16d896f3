/*
Taopick is a keyboard driven window picker and workspace cycler for X11. It
runs alongside an EWMH compliant window manager and adds three things to it:
quick focus, directional workspace cycling that skips workspaces already shown
on another screen, and screen cycling that follows the physical monitor
layout.


INSTALLATION

To install taopick:
	1. Install Go (as per https://go.dev/doc/install or get it from your
	   distribution).
	2. Run "go install github.com/nigeltao/taopick/taopick@latest".

Start it from your ~/.xsession, after the window manager:
	/path/to/your/taopick &


USAGE

Holding the Super key (Mod4) and pressing 'O' starts quick focus. Every window
on a visible workspace gets a small label in its top left corner: 'a' for the
first window, then 's', 'd', 'f' and so on along the home row. Pressing a
label's key focuses that window. Escape, or any key that is not a label,
leaves the focus where it was. While the labels are up, taopick holds the
keyboard, so no keystroke reaches another program.

Super and Alt and 'N' or 'P' switch to the next or previous workspace that is
not already on a screen. If every workspace is on a screen, nothing happens.
Super and 'L' or 'H' move to the next or previous screen. With
MONITORS_LAYOUT=left in the environment, the screens are walked right to left.

The same actions are available from a shell:
	taopick pick              # print the picked window's id, or exit 1
	taopick cycle next        # next workspace
	taopick cycle prev --screen


CUSTOMIZATION

Keys, label colors, the font and the label alphabet are set in
~/.config/taopick/config.toml, or the file named by --config or
$TAOPICK_CONFIG:
	debug = false

	[picker]
	alphabet = "0987654321nbmvcxzytpoiurewqhglkjfdsa"
	keymap = "evdev"        # or "server" to ask the X server
	grab_attempts = 50
	grab_interval = "10ms"
	foreground = 0xff2cc4
	background = 0x000000

	[keys]
	quick_focus = "Mod4-o"
	workspace_next = "Mod4-Mod1-n"
	workspace_prev = "Mod4-Mod1-p"
	screen_next = "Mod4-l"
	screen_prev = "Mod4-h"

Labels are handed out from the end of the alphabet. Any setting can also be
overridden by an environment variable such as TAOPICK_PICKER_KEYMAP=server.


DEVELOPMENT

taopick can be run in a nested X server such as Xephyr, with a window manager:
	Xephyr :9 2>/dev/null &
	DISPLAY=:9 openbox &
	DISPLAY=:9 go run ./taopick --debug
*/
package main
