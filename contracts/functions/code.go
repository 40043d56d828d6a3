package functions

// Compiled contract cells in bag-of-cells base64.
const (
	initBOC = "te6ccgEBBgEAMAABFP8A9KQT9LzyyAsBAgFiAgMCAs4EBQAJoUrd4AUAAUgAGUcAHIzAEBgQEBzwDJg="
	codeBOC = "te6ccgEBBgEA9gABFP8A9KQT9LzyyAsBAgFiAgMC9tBwIddJwh+VMCDXCx/eAtDTAwFxsMABkX+RcOIB+kAiUGZvBPhh7UTQ1AH4YoEBAdcAATEDkl8D4CGCEDGU5DS6jq8x0x8BghAxlOQ0uvLggYEBAdcAATGCANntIcIA8vTbPMj4QgHMAQGBAQHPAMntVOABghCdYFrrugUEAE2hd6ME4LnYerpZXPY9CdhzrJUKNs0E4TusalpWyPlmRadeW/vixHMBbI6v0x8BghCdYFrruvLggYEBAdcAATGCANntIcIA8vSj2zzI+EIBzAEBgQEBzwDJ7VTgW/LAggUAAqA="
	systemBOC = "te6cckECCAEAAQAAAQHAAQEFoARPAgEU/wD0pBP0vPLICwMCAWIFBABNoXejBOC52Hq6WVz2PQnYc6yVCjbNBOE7rGpaVsj5ZkWnXlv74sRzAvbQcCHXScIflTAg1wsf3gLQ0wMBcbDAAZF/kXDiAfpAIlBmbwT4Ye1E0NQB+GKBAQHXAAExA5JfA+AhghAxlOQ0uo6vMdMfAYIQMZTkNLry4IGBAQHXAAExggDZ7SHCAPL02zzI+EIBzAEBgQEBzwDJ7VTgAYIQnWBa67oHBgFsjq/THwGCEJ1gWuu68uCBgQEB1wABMYIA2e0hwgDy9KPbPMj4QgHMAQGBAQHPAMntVOBb8sCCBwACoMtGJu8="
)
