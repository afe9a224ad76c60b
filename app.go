package main

import "github.com/PrismaPhonic/green-bois-magnet/cmd"

func main() {
	cmd.Run()
}
