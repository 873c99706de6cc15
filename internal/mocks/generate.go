package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/league --output domain/league --outpkg leaguemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/player --output domain/player --outpkg playermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/roster --output domain/roster --outpkg rostermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/weeklystat --output domain/weeklystat --outpkg weeklystatmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/trade --output domain/trade --outpkg trademock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SubmissionRepository --dir ../domain/lineup --output domain/lineup --outpkg lineupmock --filename submission_repository_mock.go
