package multisig

// Compiled contract cells in bag-of-cells base64.
const (
	codeBOC = "te6ccgECFAEAA60AART/APSkE/S88sgLAQIBYgIDAgLLBAUCASANDgLr0AdDTAwFxsMABkX+RcOIB+kAiUFVvBPhh7UTQ1AH4YtIAAY4VgQEB1wD0BIEBAdcAgQEB1wBVMGwUjpP0BIEBAdcAgQEB1wBVIAPRWNs84lUT2zwwyPhCAcx/AcoAVTBQNIEBAc8A9ACBAQHPAIEBAc8Aye1UhIGAZekhWh6Ahg2gMEASdyAwAh6B7fQ+XBDgMEASdyRAUAIegvkAOR6AGSA5jgA5QAqyAWoVOeLC/oACsCAgOeAZAOIIwgaokBtnmSA5mTADATqcCHXScIflTAg1wsf3gKSW3/gIYIQ/lGYg7qP0DHbPGwX+EFvJBAjXwOBAQsrAoEBAUEz9ApvoZQB1wAwkltt4iBu8tCAggC04wHCAPL0+EL4KFQYe1F6B1Uj8Blc2zx/cFBCgEJQQm0C2zx/4AGCEIPqVZm6CAkKBwOUj8XTHwGCEIPqVZm68uCB2zxsF/hBbyQQI18D+EL4KFQgw1RbulR6mFOp8BnbPIERTQjHBRfy9IESkwP4I7wT8vQEbW3bPH/gMHAICQoAUNMfAYIQ/lGYg7ry4IH6QAEB+kABAfoA0x/SANMH0gABkdSSbQHiVWAASnBZyHABywFzAcsBcAHLABLMzMn5AMhyAcsBcAHLABLKB8v/ydAB9shxAcoBUAcBygBwAcoCUAXPFlAD+gJwAcpoI26zJW6zsY5MfwHKAMhwAcoAcAHKACRus51/AcoABCBu8tCAUATMljQDcAHKAOIkbrOdfwHKAAQgbvLQgFAEzJY0A3ABygDicAHKAAJ/AcoAAslYzJczMwFwAcoA4iFuswsAMJx/AcoAASBu8tCAAcyVMXABygDiyQH7AABUghD+UZiDUAjLH1AGzxZQBM8WWPoCyx/KAMsHIW6zlX8BygDMlHAyygDiAnu8pC9qJoagD8MWkAAMcKwICA64B6AkCAgOuAQICA64AqmDYKR0n6AkCAgOuAQICA64AqkAHorG2ecSqB7Z5BIPAgFIEBEAMDRbgQELWIEBAUEz9ApvoZQB1wAwkltt4gJ3tyg9qJoagD8MWkAAMcKwICA64B6AkCAgOuAQICA64AqmDYKR0n6AkCAgOuAQICA64AqkAHorG2ecW2eQEhMAcbd6ME4LnYerpZXPY9CdhzrJUKNs0E4TusalpWyPlmRadeW/vixHME4ECrgDcAzscpnLB1XI5LZYcAAKMW1ZcAEACBAjXwM="
	systemBOC = "te6cckECJgEABhcAAQHAAQIBIBECAQW8ncwDART/APSkE/S88sgLBAIBYgoFAgJ1BwYAcbL0YJwXOw9XSyuex6E7DnWSoUbZoJwndY1LStkfLMi068t/fFiOYJwIFXAG4BnY5TOWDquRyWyw4AStsL+7UTQ1AH4YtIAAY6m+kABAfQEgQEB1wCBAQHXANIA1AHQ2zw3EHwQexB6EHkQeFUFbByPH/pAAQH0BIEBAdcA1AHQ2zw3EHoQeRB4VQUK0VUI2zzigJCQQCAEE2zwJAARsVwICzQwLACPxC3Sq2s+iyYcGQA54AgmfogwE3dAOhpgYC42GAAyL/IuHEA/SARKCq3gnww9qJoagD8MWkAAMdTfSAAgPoCQICA64BAgIDrgGkAagDobZ4biD4IPYg9CDyIPCqCtg5Hj/0gAID6AkCAgOuAagDobZ4biD0IPIg8KoKFaKqEbZ5xKo3CQkEA0CZNs8MMj4QgHMfwHKAFWwUMvPFhn0ABeBAQHPABWBAQHPABPKAMhGFxA1GNs8yQHMye1UDh0Bpu2i7ftwIddJwh+VMCDXCx/eApJbf+AhwAAh10nBIbCSW3/gAcAAjqf5AYLwIq7m0KbcFGV3J33VjQauMJCjzdPYqIVhGEIIrl9usDm64wKRMOJwDwLsgRKTJPgjvPL0ggCfaiiz8vT4QW8kECNfAyuBAQsigQEBQTP0Cm+hlAHXADCSW23iIG7y0IAcgQELUA1tgQEB8AdQq6BTCL6PKDd/cHCBAIJUeYdUeYdWEshVYIIQg+pVmVAIyx8H2zzJL1UgbW3bPAfeCX/bMR0hAA5wCAdwB1VBAQW82DwSART/APSkE/S88sgLEwIBYhsUAgEgGRUCAUgXFgBxt3owTgudh6ullc9j0J2HOslQo2zQThO6xqWlbI+WZFp15b++LEcwTgQKuANwDOxymcsHVcjktlhwAne3KD2omhqAPwxaQAAxwrAgIDrgHoCQICA64BAgIDrgCqYNgpHSfoCQICA64BAgIDrgCqQAeisbZ5xbZ5AlGAAIECNfAwJ7vKQvaiaGoA/DFpAADHCsCAgOuAegJAgIDrgECAgOuAKpg2CkdJ+gJAgIDrgECAgOuAKpAB6KxtnnEqge2eQlGgAwNFuBAQtYgQEBQTP0Cm+hlAHXADCSW23iAgLLHhwBl6SFaHoCGDaAwQBJ3IDACHoHt9D5cEOAwQBJ3JEBQAh6C+QA5HoAZIDmOADlACrIBahU54sL+gAKwICA54BkA4gjCBqiQG2eZIDmZMAdAFSCEP5RmINQCMsfUAbPFlAEzxZY+gLLH8oAywchbrOVfwHKAMyUcDLKAOIC69AHQ0wMBcbDAAZF/kXDiAfpAIlBVbwT4Ye1E0NQB+GLSAAGOFYEBAdcA9ASBAQHXAIEBAdcAVTBsFI6T9ASBAQHXAIEBAdcAVSAD0VjbPOJVE9s8MMj4QgHMfwHKAFUwUDSBAQHPAPQAgQEBzwCBAQHPAMntVIlHwTqcCHXScIflTAg1wsf3gKSW3/gIYIQ/lGYg7qP0DHbPGwX+EFvJBAjXwOBAQsrAoEBAUEz9ApvoZQB1wAwkltt4iBu8tCAggC04wHCAPL0+EL4KFQYe1F6B1Uj8Blc2zx/cFBCgEJQQm0C2zx/4AGCEIPqVZm6JCMhIAOUj8XTHwGCEIPqVZm68uCB2zxsF/hBbyQQI18D+EL4KFQgw1RbulR6mFOp8BnbPIERTQjHBRfy9IESkwP4I7wT8vQEbW3bPH/gMHAkIyEB9shxAcoBUAcBygBwAcoCUAXPFlAD+gJwAcpoI26zJW6zsY5MfwHKAMhwAcoAcAHKACRus51/AcoABCBu8tCAUATMljQDcAHKAOIkbrOdfwHKAAQgbvLQgFAEzJY0A3ABygDicAHKAAJ/AcoAAslYzJczMwFwAcoA4iFusyIAMJx/AcoAASBu8tCAAcyVMXABygDiyQH7AABKcFnIcAHLAXMBywFwAcsAEszMyfkAyHIBywFwAcsAEsoHy//J0ABQ0x8BghD+UZiDuvLggfpAAQH6QAEB+gDTH9IA0wfSAAGR1JJtAeJVYAAKMW1ZcAEoxq2a"
)
