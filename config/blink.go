// Package config holds the build-time constants of each supported board
package config

// TargetHz is the blink frequency: the outputs swap this many times per second
const TargetHz = 1
