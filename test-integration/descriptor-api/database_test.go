package integration

import (
	"net/http"
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/tidwall/gjson"

	"github.com/stacklok/descriptor-registry-server/database"
	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
	"github.com/stacklok/descriptor-registry-server/test-integration/descriptor-api/helpers"
)

var _ = Describe("Database Registry Integration", Label("database"), Ordered, func() {
	var (
		tempDir      string
		container    *postgres.PostgresContainer
		params       helpers.DatabaseParams
		serverHelper *helpers.ServerTestHelper
	)

	BeforeAll(func() {
		var err error
		container, err = postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("registry"),
			postgres.WithUsername("registry"),
			postgres.WithPassword("registry-pass"),
			postgres.BasicWaitStrategies(),
		)
		if err != nil {
			Skip("container runtime unavailable: " + err.Error())
		}

		connString, err := container.ConnectionString(ctx, "sslmode=disable")
		Expect(err).NotTo(HaveOccurred())
		Expect(database.MigrateUp(ctx, connString)).To(Succeed())

		host, err := container.Host(ctx)
		Expect(err).NotTo(HaveOccurred())
		port, err := container.MappedPort(ctx, "5432/tcp")
		Expect(err).NotTo(HaveOccurred())
		portNum, err := strconv.Atoi(port.Port())
		Expect(err).NotTo(HaveOccurred())

		params = helpers.DatabaseParams{
			Host:     host,
			Port:     portNum,
			User:     "registry",
			Password: "registry-pass",
			Database: "registry",
		}
	})

	AfterAll(func() {
		if container != nil {
			Expect(tc.TerminateContainer(container)).To(Succeed())
		}
	})

	BeforeEach(func() {
		tempDir = createTempDir("database-test-")
		serverHelper = helpers.NewServerTestHelper(ctx, helpers.WriteDatabaseConfig(tempDir, "durable", params))
		Expect(serverHelper.StartServer()).To(Succeed())
		serverHelper.WaitForServerReady(30 * time.Second)
	})

	AfterEach(func() {
		if serverHelper != nil {
			Expect(serverHelper.StopServer()).To(Succeed())
		}
		cleanupTempDir(tempDir)
	})

	It("stores shells with their nested submodels", func() {
		shell := helpers.NewShell("urn:it:db:shell", "pump", descriptor.AssetKindInstance,
			helpers.NewSubmodel("urn:it:db:sm:b"), helpers.NewSubmodel("urn:it:db:sm:a"))

		status, _ := serverHelper.Do(http.MethodPost, "/shell-descriptors", shell)
		Expect(status).To(Equal(http.StatusCreated))

		status, body := serverHelper.Do(http.MethodGet,
			"/shell-descriptors/"+helpers.Encode(shell.ID)+"/submodel-descriptors", nil)
		Expect(status).To(Equal(http.StatusOK))
		Expect(gjson.GetBytes(body, "result.#.id").Array()).To(HaveLen(2))

		status, body = serverHelper.Do(http.MethodGet, "/shell-descriptors?assetKind=Instance&assetType=pump", nil)
		Expect(status).To(Equal(http.StatusOK))
		Expect(gjson.GetBytes(body, "result.0.id").String()).To(Equal(shell.ID))
	})

	It("keeps descriptors across restarts", func() {
		standalone := helpers.NewSubmodel("urn:it:db:standalone")
		status, _ := serverHelper.Do(http.MethodPost, "/submodel-descriptors", standalone)
		Expect(status).To(Equal(http.StatusCreated))

		Expect(serverHelper.StopServer()).To(Succeed())
		serverHelper = helpers.NewServerTestHelper(ctx, helpers.WriteDatabaseConfig(tempDir, "durable", params))
		Expect(serverHelper.StartServer()).To(Succeed())
		serverHelper.WaitForServerReady(30 * time.Second)

		status, body := serverHelper.Do(http.MethodGet, "/submodel-descriptors/"+helpers.Encode(standalone.ID), nil)
		Expect(status).To(Equal(http.StatusOK))
		Expect(gjson.GetBytes(body, "idShort").String()).To(Equal("submodel"))
	})
})
