/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vscentrum/accountpagectl/internal/dispatch"
	"github.com/vscentrum/accountpagectl/internal/query"
)

var (
	voAll   bool
	voVscID string
)

// voCmd represents the vo command
var voCmd = &cobra.Command{
	Use:   "vo",
	Short: "Request virtual organisation information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, dispatch.Command{
			Name:   dispatch.CommandVO,
			Filter: query.Filter{All: voAll, VscID: voVscID},
		})
	},
}

func init() {
	voCmd.Flags().BoolVar(&voAll, "all", false, "get information for all virtual organisations")
	voCmd.Flags().StringVar(&voVscID, "vscid", "", "the VSC id of the virtual organisation to fetch")

	rootCmd.AddCommand(voCmd)
}
