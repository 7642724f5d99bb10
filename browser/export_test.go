package browser

// Command exposes command for testing.
var Command = command
