/**
 * wactl is driven by tree/root.go's Execute() method, which is called here
 */

package main

import (
	"os"

	"github.com/Copysiter/O3GO-WA/tree"
)

func main() {
	os.Exit(tree.Execute(nil))
}
