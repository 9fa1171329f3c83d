package main

// Version is the current irmond release. Updated on tagging.
const Version = "0.4.2"
