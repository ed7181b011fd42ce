// Package nftmeta defines the public types and interfaces shared by the
// nftmeta packages: file records, validation results, loggers, sentinel
// errors and exit codes.
package nftmeta
