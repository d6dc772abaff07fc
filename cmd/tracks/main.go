// Command tracks maintains a catalog of race tracks on the command line.
package main

func main() {
	Execute()
}
