// Package utils provides filesystem helpers shared across commands.
package utils
