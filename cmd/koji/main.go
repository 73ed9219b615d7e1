// Package main provides the koji CLI.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aguzmant103/Koji/pkg/mode"
	"github.com/aguzmant103/Koji/pkg/theory"
	"github.com/aguzmant103/Koji/pkg/tui"
)

// Version is the current koji CLI version
var Version = "0.1.0"

var (
	modesGlob string
	showSteps bool
)

var rootCmd = &cobra.Command{
	Use:     "koji",
	Short:   "Koji - keys, scale degrees and modal transposition",
	Long:    `Koji computes music-theory quantities from interval vectors: the notes of a key, scale degrees, integer frequencies, and stepwise modal transposition. Notes are written tracker style (C-4, F#3); modes come from the builtin catalog or YAML files.`,
	Version: Version,
}

var notesCmd = &cobra.Command{
	Use:   "notes <tonic> <mode>",
	Short: "List every degree of a key",
	Long: `List every degree of a key: position, note name, pitch class,
key number and integer frequency.

Examples:
  koji notes E-4 major
  koji notes a4 "harmonic minor"`,
	Args: cobra.ExactArgs(2),
	RunE: runNotes,
}

var freqCmd = &cobra.Command{
	Use:   "freq <note>",
	Short: "Key number and frequency of a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runFreq,
}

var degreeCmd = &cobra.Command{
	Use:   "degree <note> <tonic> <mode>",
	Short: "Scale degree of a note within a key",
	Long: `Scale degree of a note within a key. Degrees are 1-based; a key
that wraps back onto its tonic reports the tonic at the wrapped
final position.

Example:
  koji degree G#4 E-4 major`,
	Args: cobra.ExactArgs(3),
	RunE: runDegree,
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <note> <tonic> <mode> <numsteps> <up|down|oblique>",
	Short: "Move a note stepwise through a key",
	Long: `Move a note a number of scale degrees through a key and print
where it lands. The note must be a member of the key.

Examples:
  koji transpose F#4 E-4 major 3 up
  koji transpose C-4 C-4 major 1 down`,
	Args: cobra.ExactArgs(5),
	RunE: runTranspose,
}

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the mode catalog",
	Args:  cobra.NoArgs,
	RunE:  runModes,
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactive scale explorer",
	Args:  cobra.NoArgs,
	RunE:  runExplore,
}

// loadCatalog returns the builtin catalog, with user catalog files
// merged over it when --modes is set
func loadCatalog() (*mode.Catalog, error) {
	catalog := mode.Builtin()
	if modesGlob == "" {
		return catalog, nil
	}
	user, err := mode.LoadGlob(modesGlob)
	if err != nil {
		return nil, err
	}
	catalog.Merge(user)
	return catalog, nil
}

func lookup(args []string) (theory.PitchClass, mode.Mode, error) {
	tonic, err := theory.ParseNote(args[0])
	if err != nil {
		return theory.PitchClass{}, mode.Mode{}, err
	}
	catalog, err := loadCatalog()
	if err != nil {
		return theory.PitchClass{}, mode.Mode{}, err
	}
	m, err := catalog.Get(args[1])
	if err != nil {
		return theory.PitchClass{}, mode.Mode{}, err
	}
	return tonic, m, nil
}

func runNotes(cmd *cobra.Command, args []string) error {
	tonic, m, err := lookup(args)
	if err != nil {
		return err
	}

	notes := theory.NotesOfKey(tonic, m.Steps)
	keynum := tonic.Keynum()
	for i, note := range notes {
		if i > 0 {
			keynum += m.Steps[i-1]
		}
		pc := theory.FromKeynum(keynum)
		fmt.Printf("%2d  %-4s  pc %2d  key %3d  %5d Hz\n",
			i+1, theory.NoteName(pc), note, keynum, pc.Frequency())
	}
	return nil
}

func runFreq(cmd *cobra.Command, args []string) error {
	pc, err := theory.ParseNote(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s  key %d  %d Hz\n", theory.NoteName(pc), pc.Keynum(), pc.Frequency())
	return nil
}

func runDegree(cmd *cobra.Command, args []string) error {
	pc, err := theory.ParseNote(args[0])
	if err != nil {
		return err
	}
	tonic, m, err := lookup(args[1:])
	if err != nil {
		return err
	}

	degree := theory.ScaleDegree(pc, tonic, m.Steps)
	if degree == 0 {
		fmt.Printf("%s is not in %s %s\n", theory.NoteName(pc), theory.NoteName(tonic), m.Name)
		return nil
	}
	fmt.Printf("%s is degree %d of %s %s\n", theory.NoteName(pc), degree, theory.NoteName(tonic), m.Name)
	return nil
}

func runTranspose(cmd *cobra.Command, args []string) error {
	pc, err := theory.ParseNote(args[0])
	if err != nil {
		return err
	}
	tonic, m, err := lookup(args[1:3])
	if err != nil {
		return err
	}
	numsteps, err := strconv.Atoi(args[3])
	if err != nil || numsteps < 0 {
		return fmt.Errorf("bad step count %q", args[3])
	}
	dir, err := theory.ParseDirection(args[4])
	if err != nil {
		return err
	}

	keynum, err := theory.ModalTransposition(pc, tonic, m.Steps, numsteps, dir)
	if err != nil {
		return err
	}
	target := theory.FromKeynum(keynum)
	fmt.Printf("%s %s %d -> %s  key %d  %d Hz\n",
		theory.NoteName(pc), dir, numsteps, theory.NoteName(target), keynum, target.Frequency())
	return nil
}

func runModes(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	for _, m := range catalog.Modes() {
		if showSteps {
			parts := make([]string, len(m.Steps))
			for i, step := range m.Steps {
				parts[i] = strconv.Itoa(step)
			}
			fmt.Printf("%-18s %s\n", m.Name, strings.Join(parts, "-"))
			continue
		}
		fmt.Println(m.Name)
	}
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(catalog))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running explorer: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&modesGlob, "modes", "", "Glob of YAML mode catalog files merged over the builtins")
	modesCmd.Flags().BoolVar(&showSteps, "steps", false, "Show each mode's interval vector")

	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(freqCmd)
	rootCmd.AddCommand(degreeCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(exploreCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
