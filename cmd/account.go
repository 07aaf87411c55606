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
	accountAll       bool
	accountInstitute string
	accountLogin     string
	accountModified  string
	accountVscID     string
)

// accountCmd represents the account command
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Request account information",
	Long: `Request account information.

Filters are applied in this order and the first one that is complete wins:
--all, --institute with --login, --modified, --vscid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, dispatch.Command{
			Name: dispatch.CommandAccount,
			Filter: query.Filter{
				All:            accountAll,
				Institute:      accountInstitute,
				InstituteLogin: accountLogin,
				ModifiedSince:  accountModified,
				VscID:          accountVscID,
			},
		})
	},
}

func init() {
	accountCmd.Flags().BoolVar(&accountAll, "all", false, "get information for all accounts")
	accountCmd.Flags().StringVar(&accountInstitute, "institute", "", "limit query to the given institute (needs --login)")
	accountCmd.Flags().StringVar(&accountLogin, "login", "", "user login at the home institute")
	accountCmd.Flags().StringVar(&accountModified, "modified", "", "get accounts that have been modified since YYYYMMDDHHMM")
	accountCmd.Flags().StringVar(&accountVscID, "vscid", "", "the VSC id of the account to fetch")

	rootCmd.AddCommand(accountCmd)
}
