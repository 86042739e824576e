package integration

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
	"github.com/stacklok/descriptor-registry-server/test-integration/descriptor-api/helpers"
)

var _ = Describe("Memory Registry Integration", Label("memory"), func() {
	var (
		tempDir      string
		serverHelper *helpers.ServerTestHelper
	)

	BeforeEach(func() {
		tempDir = createTempDir("memory-test-")
	})

	AfterEach(func() {
		if serverHelper != nil {
			Expect(serverHelper.StopServer()).To(Succeed())
			serverHelper = nil
		}
		cleanupTempDir(tempDir)
	})

	Context("Seeded store", func() {
		BeforeEach(func() {
			nested := helpers.NewSubmodel("urn:it:sm:nameplate")
			standalone := helpers.NewSubmodel("urn:it:sm:energy")
			seed := helpers.WriteSeedYAML(tempDir,
				[]*descriptor.Shell{helpers.NewShell("urn:it:shell:seeded", "pump", descriptor.AssetKindInstance, nested)},
				[]*descriptor.Submodel{&standalone},
			)

			serverHelper = helpers.NewServerTestHelper(ctx, helpers.WriteMemoryConfig(tempDir, "seeded", seed))
			Expect(serverHelper.StartServer()).To(Succeed())
			serverHelper.WaitForServerReady(10 * time.Second)
		})

		It("serves the seed descriptors", func() {
			status, body := serverHelper.Do(http.MethodGet, "/shell-descriptors/"+helpers.Encode("urn:it:shell:seeded"), nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(gjson.GetBytes(body, "assetType").String()).To(Equal("pump"))
			Expect(gjson.GetBytes(body, "submodelDescriptors.#").Int()).To(BeEquivalentTo(1))

			status, body = serverHelper.Do(http.MethodGet, "/submodel-descriptors", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(gjson.GetBytes(body, "result.#.id").Array()).To(HaveLen(1))
			Expect(gjson.GetBytes(body, "result.0.id").String()).To(Equal("urn:it:sm:energy"))
		})

		It("keeps nested and standalone submodels apart", func() {
			status, _ := serverHelper.Do(http.MethodGet, "/submodel-descriptors/"+helpers.Encode("urn:it:sm:nameplate"), nil)
			Expect(status).To(Equal(http.StatusNotFound))

			nestedPath := "/shell-descriptors/" + helpers.Encode("urn:it:shell:seeded") +
				"/submodel-descriptors/" + helpers.Encode("urn:it:sm:nameplate")
			status, body := serverHelper.Do(http.MethodGet, nestedPath, nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(gjson.GetBytes(body, "id").String()).To(Equal("urn:it:sm:nameplate"))
		})
	})

	Context("Empty store", func() {
		BeforeEach(func() {
			serverHelper = helpers.NewServerTestHelper(ctx, helpers.WriteMemoryConfig(tempDir, "empty", ""))
			Expect(serverHelper.StartServer()).To(Succeed())
			serverHelper.WaitForServerReady(10 * time.Second)
		})

		It("runs a shell through its lifecycle", func() {
			shell := helpers.NewShell("urn:it:shell:1", "valve", descriptor.AssetKindType)
			shellPath := "/shell-descriptors/" + helpers.Encode(shell.ID)

			By("creating the shell")
			status, _ := serverHelper.Do(http.MethodPost, "/shell-descriptors", shell)
			Expect(status).To(Equal(http.StatusCreated))

			By("rejecting a second create")
			status, body := serverHelper.Do(http.MethodPost, "/shell-descriptors", shell)
			Expect(status).To(Equal(http.StatusConflict))
			Expect(gjson.GetBytes(body, "messages.0.code").String()).To(Equal("409"))
			Expect(gjson.GetBytes(body, "messages.0.correlationId").String()).NotTo(BeEmpty())

			By("adding a nested submodel")
			nested := helpers.NewSubmodel("urn:it:sm:1")
			status, _ = serverHelper.Do(http.MethodPost, shellPath+"/submodel-descriptors", nested)
			Expect(status).To(Equal(http.StatusCreated))

			status, body = serverHelper.Do(http.MethodGet, shellPath+"/submodel-descriptors", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(gjson.GetBytes(body, "result.#.id").Array()).To(HaveLen(1))

			By("replacing the shell")
			shell.IDShort = "renamed"
			shell.SubmodelDescriptors = []descriptor.Submodel{nested}
			status, _ = serverHelper.Do(http.MethodPut, shellPath, shell)
			Expect(status).To(Equal(http.StatusNoContent))

			status, body = serverHelper.Do(http.MethodGet, shellPath, nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(gjson.GetBytes(body, "idShort").String()).To(Equal("renamed"))

			By("deleting the shell and its submodels")
			status, _ = serverHelper.Do(http.MethodDelete, shellPath, nil)
			Expect(status).To(Equal(http.StatusNoContent))

			status, _ = serverHelper.Do(http.MethodGet, shellPath+"/submodel-descriptors/"+helpers.Encode(nested.ID), nil)
			Expect(status).To(Equal(http.StatusNotFound))
		})

		It("pages through shells in identifier order", func() {
			for _, shell := range helpers.NumberedShells(5) {
				status, _ := serverHelper.Do(http.MethodPost, "/shell-descriptors", shell)
				Expect(status).To(Equal(http.StatusCreated))
			}

			var (
				ids    []string
				cursor string
				pages  int
			)
			for {
				path := "/shell-descriptors?limit=2"
				if cursor != "" {
					path += "&cursor=" + cursor
				}
				status, body := serverHelper.Do(http.MethodGet, path, nil)
				Expect(status).To(Equal(http.StatusOK))
				pages++

				for _, id := range gjson.GetBytes(body, "result.#.id").Array() {
					ids = append(ids, id.String())
				}
				cursor = gjson.GetBytes(body, "paging_metadata.cursor").String()
				if cursor == "" {
					break
				}
			}

			Expect(pages).To(Equal(3))
			Expect(ids).To(Equal([]string{
				"urn:it:shell:0", "urn:it:shell:1", "urn:it:shell:2", "urn:it:shell:3", "urn:it:shell:4",
			}))
		})

		It("rejects identifiers that are not base64url", func() {
			status, body := serverHelper.Do(http.MethodGet, "/shell-descriptors/not+base64", nil)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(gjson.GetBytes(body, "messages.0.messageType").String()).To(Equal("Error"))
		})
	})
})
