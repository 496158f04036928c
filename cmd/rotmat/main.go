// Command rotmat rotates a square JSON grid by quarter-turns.
//
//	echo '[[1,2],[3,4]]' | rotmat -k -1
package main

import "github.com/katalvlaran/rotmat/internal/cli"

func main() {
	cli.Execute()
}
