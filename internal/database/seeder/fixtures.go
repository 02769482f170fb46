package seeder

import "github.com/google/uuid"

// Fixed identifiers keep the demo data idempotent across runs.
var (
	DemoRecruiterID = uuid.MustParse("6f1f8a0e-0c55-4c3a-9d0b-7a2f1f3c0001")

	DemoSeekerUserID    = uuid.MustParse("2b7e9c41-8d0a-4f7e-a1e3-5c9d20a10001")
	DemoSeekerProfileID = uuid.MustParse("2b7e9c41-8d0a-4f7e-a1e3-5c9d20a1f001")

	DemoDesignerUserID    = uuid.MustParse("2b7e9c41-8d0a-4f7e-a1e3-5c9d20a10002")
	DemoDesignerProfileID = uuid.MustParse("2b7e9c41-8d0a-4f7e-a1e3-5c9d20a1f002")

	demoJobBackend  = uuid.MustParse("9a3c5e10-4b2d-4c8e-8f61-1d2e3f4a0001")
	demoJobPlatform = uuid.MustParse("9a3c5e10-4b2d-4c8e-8f61-1d2e3f4a0002")
	demoJobDesign   = uuid.MustParse("9a3c5e10-4b2d-4c8e-8f61-1d2e3f4a0003")
	demoJobClosed   = uuid.MustParse("9a3c5e10-4b2d-4c8e-8f61-1d2e3f4a0004")

	demoApplicationBackend = uuid.MustParse("c4d1e2f3-5a6b-4c7d-8e9f-0a1b2c3d0001")
	demoApplicationDesign  = uuid.MustParse("c4d1e2f3-5a6b-4c7d-8e9f-0a1b2c3d0002")
)
