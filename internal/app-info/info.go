package app_info

// NAME the name of this app
const NAME = "bumpver"

// VERSION the current version of this app
const VERSION = "v0.1.0"
