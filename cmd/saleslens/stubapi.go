package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpDelivery "github.com/saleslens/pipeline/internal/delivery/http"
)

var (
	stubPort     string
	stubProducts int
)

var stubAPICmd = &cobra.Command{
	Use:   "stub-api",
	Short: "Serve a local product catalog API",
	Long: `The stub-api command serves a DummyJSON-compatible product catalog from a
deterministic fixture set, so the pipeline can be run and tested without
internet access:

  saleslens stub-api --port 9090 &
  SALESLENS_CATALOG_BASE_URL=http://localhost:9090 saleslens run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}

		handler := httpDelivery.NewHandler(httpDelivery.FixtureProducts(stubProducts))
		router := httpDelivery.SetupRouter(handler)

		addr := fmt.Sprintf(":%s", stubPort)
		log.Printf("[stub-api] serving %d products on %s", stubProducts, addr)

		return router.Run(addr)
	},
}

func init() {
	rootCmd.AddCommand(stubAPICmd)

	stubAPICmd.Flags().StringVar(&stubPort, "port", "8080", "port to listen on")
	stubAPICmd.Flags().IntVar(&stubProducts, "products", 100, "number of fixture products to serve")
}
