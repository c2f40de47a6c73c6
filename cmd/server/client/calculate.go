package client

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	carryWeight     int
	element         string
	ranged          bool
	forgeLevel      int
	rangedRequired  bool
	rangedForbidden bool
	attackElement   string
	defenseElement  string
	apWeight        int
	vpWeight        int
	hpWeight        int
	mpWeight        int
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate the best equipment set for a unit",
	RunE:  runCalculate,
}

func init() {
	calculateCmd.Flags().IntVar(&carryWeight, "carry-weight", 0, "unit carrying capacity")
	calculateCmd.Flags().StringVar(&element, "element", "NONE", "unit element")
	calculateCmd.Flags().BoolVar(&ranged, "ranged", false, "unit can use ranged weapons")
	calculateCmd.Flags().IntVar(&forgeLevel, "forge-level", 0, "unit forge level")
	calculateCmd.Flags().BoolVar(&rangedRequired, "ranged-required", false, "require a ranged weapon")
	calculateCmd.Flags().BoolVar(&rangedForbidden, "ranged-forbidden", false, "forbid ranged weapons")
	calculateCmd.Flags().StringVar(&attackElement, "attack-element", "", "required resulting attack element")
	calculateCmd.Flags().StringVar(&defenseElement, "defense-element", "", "required resulting defense element")
	calculateCmd.Flags().IntVar(&apWeight, "ap-weight", 0, "attack points weight")
	calculateCmd.Flags().IntVar(&vpWeight, "vp-weight", 0, "vitality points weight")
	calculateCmd.Flags().IntVar(&hpWeight, "hp-weight", 0, "health points weight")
	calculateCmd.Flags().IntVar(&mpWeight, "mp-weight", 0, "mana points weight")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	params := url.Values{}
	params.Set("carryWeight", strconv.Itoa(carryWeight))
	params.Set("element", element)
	params.Set("ranged", strconv.FormatBool(ranged))
	params.Set("forgeLevel", strconv.Itoa(forgeLevel))
	params.Set("rangedRequired", strconv.FormatBool(rangedRequired))
	params.Set("rangedForbidden", strconv.FormatBool(rangedForbidden))
	if attackElement != "" {
		params.Set("attackElement", attackElement)
	}
	if defenseElement != "" {
		params.Set("defenseElement", defenseElement)
	}
	params.Set("apWeight", strconv.Itoa(apWeight))
	params.Set("vpWeight", strconv.Itoa(vpWeight))
	params.Set("hpWeight", strconv.Itoa(hpWeight))
	params.Set("mpWeight", strconv.Itoa(mpWeight))

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet,
		serverAddr+"/api/v1alpha1/loadout?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	return doRequest(req)
}
