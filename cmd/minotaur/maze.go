package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/minotaur/level"
	"github.com/lixenwraith/minotaur/maze"
)

var (
	mazeWidth  int
	mazeHeight int
	mazeLevel  int
	mazeSeed   int64
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Preview a generated dungeon",
	Long: `Generate one dungeon with a level's room settings and print it.
Walls are #, traps ^, the start S. Width and height override the level size.`,
	RunE: runMaze,
}

func init() {
	mazeCmd.Flags().IntVar(&mazeWidth, "width", 0, "grid width (0 = level width)")
	mazeCmd.Flags().IntVar(&mazeHeight, "height", 0, "grid height (0 = level height)")
	mazeCmd.Flags().IntVar(&mazeLevel, "level", 1, "level whose settings to use")
	mazeCmd.Flags().Int64Var(&mazeSeed, "seed", 0, "random seed (0 = random)")
}

func runMaze(cmd *cobra.Command, args []string) error {
	d, ok := level.Default().At(mazeLevel - 1)
	if !ok {
		return fmt.Errorf("no level %d", mazeLevel)
	}
	if mazeWidth > 0 {
		d.Width = mazeWidth
	}
	if mazeHeight > 0 {
		d.Height = mazeHeight
	}

	start := time.Now()
	res, err := maze.Generate(d.MazeConfig(mazeSeed))
	if err != nil {
		return err
	}
	dur := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %dx%d in %v\n", res.Grid.Width(), res.Grid.Height(), dur)
	fmt.Fprintf(out, "Rooms: %d  Floor: %d  Traps: %d  Reachable: %d\n",
		len(res.Rooms), res.Grid.Count(maze.Floor), res.Grid.Count(maze.Trap),
		maze.ReachableCount(res.Grid, res.Start))
	drawMaze(out, res)
	return nil
}

func drawMaze(w io.Writer, res maze.Result) {
	var b strings.Builder
	for y := 0; y < res.Grid.Height(); y++ {
		for x := 0; x < res.Grid.Width(); x++ {
			switch {
			case res.Start == (maze.Point{X: x, Y: y}):
				b.WriteByte('S')
			case res.Grid.At(x, y) == maze.Wall:
				b.WriteByte('#')
			case res.Grid.At(x, y) == maze.Trap:
				b.WriteByte('^')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}
