package cmd

import (
	"errors"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/devportfolio/portfolio/pkg/sdk"
)

var (
	listFeatured bool
	projectInput sdk.ProjectInput
)

// projectsCmd is the parent command for project operations
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Browse and manage projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd.Context())

		if err := a.store.FetchProjects(cmd.Context(), listFeatured); err != nil {
			return errors.New(a.store.State().Projects.Err)
		}

		projects := a.store.State().Projects.Data
		if len(projects) == 0 {
			pterm.Info.Println("No projects found")
			return nil
		}

		data := pterm.TableData{{"ID", "TITLE", "TECHNOLOGIES", "FEATURED"}}
		for _, p := range projects {
			data = append(data, []string{p.ID, p.Title, strings.Join(p.Technologies, ", "), strconv.FormatBool(p.Featured)})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var projectsGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd.Context())

		if err := a.store.FetchProjectByID(cmd.Context(), args[0]); err != nil {
			return errors.New(a.store.State().CurrentProject.Err)
		}
		printProject(a.store.State().CurrentProject.Data)
		return nil
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project owned by the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd.Context())

		p, err := a.store.CreateProject(cmd.Context(), projectInput)
		if err != nil {
			return errors.New(a.store.State().Projects.Err)
		}
		pterm.Success.Printf("Created project %s\n", p.ID)
		printProject(p)
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a project you own",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd.Context())

		if err := a.store.DeleteProject(cmd.Context(), args[0]); err != nil {
			return errors.New(a.store.State().Projects.Err)
		}
		pterm.Success.Printf("Project %s removed\n", args[0])
		return nil
	},
}

func printProject(p *sdk.Project) {
	if p == nil {
		return
	}
	pterm.DefaultSection.Println(p.Title)
	pterm.Println(p.Description)
	pterm.Info.Printf("ID:           %s\n", p.ID)
	pterm.Info.Printf("Technologies: %s\n", strings.Join(p.Technologies, ", "))
	if p.GithubURL != "" {
		pterm.Info.Printf("GitHub:       %s\n", p.GithubURL)
	}
	if p.LiveURL != "" {
		pterm.Info.Printf("Live:         %s\n", p.LiveURL)
	}
	pterm.Info.Printf("Featured:     %t\n", p.Featured)
}

func init() {
	projectsListCmd.Flags().BoolVar(&listFeatured, "featured", false, "Only featured projects")

	f := projectsCreateCmd.Flags()
	f.StringVar(&projectInput.Title, "title", "", "Project title")
	f.StringVar(&projectInput.Description, "description", "", "Project description")
	f.StringVar(&projectInput.Image, "image", "", "Image URL")
	f.StringSliceVar(&projectInput.Technologies, "tech", nil, "Technologies (repeatable or comma separated)")
	f.StringVar(&projectInput.GithubURL, "github", "", "Repository URL")
	f.StringVar(&projectInput.LiveURL, "live", "", "Live site URL")
	f.BoolVar(&projectInput.Featured, "featured", false, "Mark as featured")
	_ = projectsCreateCmd.MarkFlagRequired("title")
	_ = projectsCreateCmd.MarkFlagRequired("description")

	projectsCmd.AddCommand(projectsListCmd, projectsGetCmd, projectsCreateCmd, projectsDeleteCmd)
}
