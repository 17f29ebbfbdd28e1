package main

// Default command-line flag values
const (
	defaultStart = "0,0,0"
	defaultEnd   = "90,45,30"
)

// Report formatting
const (
	bytesPerKibibyte = 1024
	tabMinWidth      = 0
	tabWidth         = 8
	tabPadding       = 2
	tabPadChar       = ' '
)
