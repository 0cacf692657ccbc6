package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexr/huntboard/internal/config"
	"github.com/alexr/huntboard/internal/matching"
	"github.com/alexr/huntboard/internal/types"
)

var (
	scoreSkills    string
	scoreTitle     string
	scoreWorkMode  string
	scoreTitles    string
	scoreWorkModes string
	scoreConfig    string
)

var scoreCmd = &cobra.Command{
	Use:   "score <job-file>",
	Short: "Score a job description against a skill list",
	Long:  `Compute a fit score for a job posting read from a text file, without a database. Skills and preferences are supplied as flags or a JSON config file; flags win.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreSkills, "skills", "", "Comma-separated skill names")
	scoreCmd.Flags().StringVar(&scoreTitle, "title", "", "Job title (defaults to the file's first line)")
	scoreCmd.Flags().StringVar(&scoreWorkMode, "work-mode", "", "Job work mode: REMOTE, HYBRID or ONSITE")
	scoreCmd.Flags().StringVar(&scoreTitles, "desired-titles", "", "Comma-separated desired titles")
	scoreCmd.Flags().StringVar(&scoreWorkModes, "desired-work-modes", "", "Comma-separated desired work modes")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to JSON config file with flag defaults")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	if scoreConfig != "" {
		fileCfg, err := config.LoadFile(scoreConfig)
		if err != nil {
			return err
		}
		// Config file values are defaults; explicit flags win.
		if scoreSkills == "" {
			scoreSkills = fileCfg.Skills
		}
		if scoreTitles == "" {
			scoreTitles = fileCfg.DesiredTitles
		}
		if scoreWorkModes == "" {
			scoreWorkModes = fileCfg.DesiredWorkModes
		}
	}
	if scoreSkills == "" {
		return fmt.Errorf("no skills given: set --skills or 'skills' in the config file")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}
	description := string(data)

	title := scoreTitle
	if title == "" {
		title, _, _ = strings.Cut(description, "\n")
	}

	workMode := types.WorkMode(strings.ToUpper(strings.TrimSpace(scoreWorkMode)))
	if workMode != "" && !workMode.Valid() {
		return fmt.Errorf("invalid work mode: %s", scoreWorkMode)
	}

	var skills []types.Skill
	for _, name := range strings.Split(scoreSkills, ",") {
		skills = append(skills, types.Skill{Name: name})
	}

	var profile *types.Profile
	if scoreTitles != "" || scoreWorkModes != "" {
		profile = &types.Profile{
			DesiredTitles:    scoreTitles,
			DesiredWorkModes: scoreWorkModes,
		}
	}

	job := &types.Job{
		Title:       title,
		Description: description,
		WorkMode:    workMode,
	}

	result := matching.ComputeMatchScore(profile, skills, job)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Score: %d/100\n", result.Score)
	if len(result.MatchedSkills) > 0 {
		fmt.Fprintf(out, "Matched: %s\n", strings.Join(result.MatchedSkills, ", "))
	}
	if result.Notes != "" {
		fmt.Fprintf(out, "Notes: %s\n", result.Notes)
	}
	return nil
}
